package imaging

// Package imaging wraps image decoding, downscaling and JPEG encoding for
// photos fetched from the network and photos exported for sharing.
