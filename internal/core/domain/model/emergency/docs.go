// Package emergency holds the safety model: the reference list of emergency
// response centers and the panic alerts raised by job participants.
package emergency
