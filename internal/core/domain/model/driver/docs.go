// Package driver contains the Driver aggregate: the availability model for
// individuals servicing transport requests. A driver cycles between offline,
// available and busy; busy is entered only when a bound request is accepted
// and left when the request completes or availability is handed back.
package driver
