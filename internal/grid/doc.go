package grid

// Package grid holds the photo grid controller: the browsing / expanded /
// sharing mode machine, item sizing, cell configuration with the stale
// large-image guard, search submission, reordering and the share action.
// The controller is driven from the UI thread only; asynchronous completions
// are routed back through a Dispatcher.
