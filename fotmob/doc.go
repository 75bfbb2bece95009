// Package fotmob provides a client for the FotMob football data API.
//
// FotMob serves leagues, fixtures, match details, players and teams as
// untyped JSON. This package fetches those documents and hands them back as
// a generic Value, leaving schema interpretation to the caller.
//
// # Usage
//
//	client, err := fotmob.NewClient(fotmob.WithTimeout(30 * time.Second))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	team, err := client.GetTeam(ctx, "8540")
//	if err != nil {
//		log.Fatal(err)
//	}
//	name, _ := team.Path("details", "name").AsString()
//
// # Error Handling
//
// Every failure of an API call is an *Error carrying a Kind:
//
//   - KindNetwork: DNS, connection or TLS failure
//   - KindTimeout: the configured timeout elapsed
//   - KindNotFound, KindRateLimited: 404 and 429 responses
//   - KindClientError, KindServerError, KindUnexpectedStatus: other statuses
//   - KindInvalidResponse: a 200 body that is not JSON
//
// Errors match the package sentinels with errors.Is:
//
//	if errors.Is(err, fotmob.ErrRateLimited) {
//		// back off before retrying
//	}
//
// The client never retries. Redirects are followed up to MaxRedirects hops;
// a redirect past the cap is reported as KindUnexpectedStatus.
package fotmob
