package templates

// appName is the product name rendered into page titles.
const appName = "Tidemark"

// AppName returns the product name used in page titles.
func AppName() string {
	return appName
}
