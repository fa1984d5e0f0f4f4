/*
Package api is the HTTP client for the career guidance backend.

# Overview

Client.Call is the single transport primitive: it serializes the body as
JSON, sets Content-Type: application/json and makes exactly one attempt.
There are no retries, no response caching and no client-side timeout; the
caller's context is the only way a call ends early.

# Failure classes

  - *TransportError: the server answered with a non-2xx status (the body
    is never read) or with a body that is not valid JSON for the endpoint
  - *NetworkError: no response at all (DNS, refused connection, reset)

Describe turns either into a short human cause for logs.

# Typed endpoints

Each endpoint method decodes the body once into a closed result type from
package types, using the payload's status tag:

	POST /career           Career      -> *CareerGuidance | *UnknownCareer | *Rejection
	POST /recommend        Recommend   -> *Recommendations | *Rejection
	POST /skill-gap        SkillGap    -> *SkillGap | *Rejection
	POST /compare          Compare     -> *Comparison | *Rejection
	POST /onet/search      Search      -> *SearchResults | *Rejection
	GET  /onet/statistics  Statistics  -> *CareerStatistics | *Rejection
	GET  /ai-status        AIStatus    -> AIStatus

# Call log

With WithRecorder every call is reported (request id, endpoint, status,
outcome, duration) to an analytics.Manager.

# Example Usage

	client := api.New("http://127.0.0.1:5000")
	res, err := client.Career(ctx, types.CareerRequest{Career: "data scientist", Level: "student"})
	if err != nil {
		log.Println(api.Describe(err))
		return
	}
	switch r := res.(type) {
	case *types.CareerGuidance:
		fmt.Println(r.Focus)
	case *types.UnknownCareer:
		fmt.Println(r.Suggestion)
	}
*/
package api
