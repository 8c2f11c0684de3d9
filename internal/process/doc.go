// Package process stops browser process trees left behind by the chrome
// backend.
package process
