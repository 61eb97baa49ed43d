package model

// Package model defines domain data structures used across the app: photo
// records decoded from the Mars photos service and the UI load state. The
// state is a closed set of variants designed for direct binding in the UI.
