// Package clientip extracts the originating client's IP address from an
// *http.Request when the application is deployed behind one or more
// reverse proxies.
//
// The resolution algorithm examines proxy headers in descending priority
// until the first valid IP address is found, falling back to the TCP peer
// address. All candidates are parsed and normalized with net.ParseIP, so a
// spoofed header carrying garbage never propagates downstream.
//
// # Usage
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    ip := clientip.GetIP(r)
//	    log.Printf("client ip: %s", ip)
//	}
//
// GetIP never returns an error. If no valid address is found an empty
// string is returned so callers can decide how to proceed.
package clientip
