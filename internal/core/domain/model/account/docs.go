// Package account contains the actor model of the platform: customers who
// place orders, drivers who transport them, and shop staff who confirm them.
// An Account is created at signup and is read-only to the delivery lifecycle;
// lifecycle operations receive the acting account's identity explicitly
// rather than reading it from any ambient session state.
package account
