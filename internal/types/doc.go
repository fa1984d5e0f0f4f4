/*
Package types defines the payloads exchanged with the career backend.

# Overview

The types package provides shared type definitions for:
  - Request bodies for every endpoint (with validator tags)
  - Success payloads (guidance, recommendations, skill gap, comparison, search, statistics)
  - Closed result variants discriminated by the backend "status" field
  - The polymorphic learning Resource

# Result Variants

Every endpoint decodes into a sealed interface whose implementations are the
possible outcomes, for example CareerResult is one of:
  - *CareerGuidance (status "success")
  - *UnknownCareer (status "unknown")
  - *Rejection (any other status)

Consumers use an exhaustive type switch instead of comparing status strings.

# Resources

Resource decodes both JSON shapes the backend uses:

	"Read a book"                          -> PlainResource("Read a book")
	{"name": "MDN", "url": "https://..."}   -> LinkedResource("MDN", "https://...")

# Immutability

Payload values are treated as immutable once decoded. Renderers read them
and never write back.
*/
package types
