// Package services holds the shared error taxonomy for external
// collaborators (encoder, prober, settings store) and its subpackages
// wrap the external binaries shrink drives.
package services
