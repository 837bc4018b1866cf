package flickr

// Package flickr implements the photo source on top of the Flickr REST API.
// Searches and large-image fetches run off the UI thread and report back
// through a completion callback that is called exactly once.
