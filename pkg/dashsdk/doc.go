// Package dashsdk is the Go client for the OpsBoard dashboard API.
//
// The server keeps the whole session in two HTTP-only cookies, so the client
// is built around a cookie-jar HTTP client rather than token plumbing: the
// SDK never sees or parses a token, and identity comes only from the user
// object returned by login and refresh responses.
//
// A Session tracks an explicit lifecycle:
//
//	Uninitialized -> Checking -> Authenticated | Anonymous
//
// On startup call Restore once; it silently tries the refresh endpoint and
// marks the initial check complete whether or not it succeeds. Route
// decisions (Evaluate) return Pending until that first check is done, which
// is what prevents a logged-in user from being bounced to the login page
// while their session is still being restored.
//
// Basic use:
//
//	client, err := dashsdk.NewSDKClient("http://localhost:8080")
//	if err != nil { ... }
//	session := client.NewSession()
//	session.Restore(ctx)
//	if !session.Authenticated() {
//		if err := session.Login(ctx, email, password); err != nil { ... }
//	}
//	page, err := session.ListLocations(ctx, 1, 50)
//
// Authenticated calls that hit a 401 perform exactly one silent refresh and
// retry before giving up.
package dashsdk
