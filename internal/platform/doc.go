package platform

// Package platform contains OS/platform integration glue: filesystem helpers,
// revealing folders in the system file manager, and exporting shared photos.
