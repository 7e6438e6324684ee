package message

const (
	InvalidInput   = "Invalid input."
	InvalidToken   = "Invalid or missing access token."
	ListNotFound   = "Wordlist not found."
	ServerError    = "Something went wrong."
	ListReplaced   = "Wordlist replaced."
	EnvErrFmt      = "environment variable is not set: %s"
	UnknownBackend = "Unknown generator backend."
)
