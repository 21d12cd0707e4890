package consts

const (
	// TokenDenyKey prefixes denylisted token signatures written on logout.
	TokenDenyKey = "token:deny:"

	MimeImageJPEG = "image/jpeg"
	MimeImagePNG  = "image/png"

	// AnonymousName is stored when the author did not opt into real-name display.
	AnonymousName = "Anonim"
)
