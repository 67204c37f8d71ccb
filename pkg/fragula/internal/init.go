// Package internal contains the infrastructure shared by the fragula packages:
// logging, configuration, theming, translations and hardware input.
// Types and functions in this package are not part of the public API.
package internal
