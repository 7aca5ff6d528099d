// Package dispatch routes errors raised while handling events and commands.
//
// Every error is counted in the chat_errors_total metric by kind and
// category. Errors of the application family are handed to the registered
// Handler, which typically replies to the invoker with the error's display
// message. Every other error is logged and returned to the caller.
package dispatch
