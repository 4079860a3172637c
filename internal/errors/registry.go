package errors

// Registered error codes.
const (
	CodeConfigNotFound = "E001"
	CodeConfigRead     = "E002"
	CodeConfigParse    = "E003"

	CodeTempdirCreate = "E101"

	CodeInvalidTheme = "E201"
)

// registry maps error codes to their templates.
var registry = map[string]*Error{
	CodeConfigNotFound: {
		Code:     CodeConfigNotFound,
		Category: CategoryConfig,
		Message:  "configuration file not found",
	},
	CodeConfigRead: {
		Code:     CodeConfigRead,
		Category: CategoryConfig,
		Message:  "cannot read configuration file",
	},
	CodeConfigParse: {
		Code:     CodeConfigParse,
		Category: CategoryConfig,
		Message:  "cannot parse configuration file",
	},
	CodeTempdirCreate: {
		Code:     CodeTempdirCreate,
		Category: CategoryDocument,
		Message:  "cannot create document temporary directory",
	},
	CodeInvalidTheme: {
		Code:     CodeInvalidTheme,
		Category: CategoryTheme,
		Message:  "theme provides no stylesheets, scripts, headers or custom elements",
	},
}
