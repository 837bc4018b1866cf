package model

// Package model defines the domain data structures shared across the app:
// photo records returned by a search, result sets tagged with their search
// term, and grid positions. Records are plain structs mutated only from the
// UI thread.
