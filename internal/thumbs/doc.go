// Package thumbs caches first-frame thumbnails for videos under the app
// cache directory.
package thumbs
