package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jmespath/go-jmespath"

	"github.com/studiowebux/careerguide/internal/types"
)

// Backend endpoints
const (
	EndpointAIStatus   = "/ai-status"
	EndpointCareer     = "/career"
	EndpointRecommend  = "/recommend"
	EndpointSkillGap   = "/skill-gap"
	EndpointCompare    = "/compare"
	EndpointSearch     = "/onet/search"
	EndpointStatistics = "/onet/statistics/"
)

// providersExpr extracts the configured guidance provider names from /ai-status
const providersExpr = "features.personalized_guidance.providers[].name"

var providersQuery = jmespath.MustCompile(providersExpr)

// envelope is the status tag every payload carries
type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// decode unmarshals raw into v, reporting a shape mismatch as a TransportError
func decode(endpoint string, raw json.RawMessage, v any) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return &TransportError{Endpoint: endpoint, StatusCode: http.StatusOK, Err: err}
	}
	return nil
}

func peekStatus(endpoint string, raw json.RawMessage) (envelope, error) {
	var env envelope
	err := decode(endpoint, raw, &env)
	return env, err
}

// successOr decodes a payload tagged "success" into T and anything else
// into a Rejection
func successOr[T any](endpoint string, raw json.RawMessage) (*T, *types.Rejection, error) {
	env, err := peekStatus(endpoint, raw)
	if err != nil {
		return nil, nil, err
	}
	if env.Status != types.StatusSuccess {
		return nil, &types.Rejection{Status: env.Status, Message: env.Message}, nil
	}

	payload := new(T)
	if err := decode(endpoint, raw, payload); err != nil {
		return nil, nil, err
	}
	return payload, nil, nil
}

// Career looks up guidance for one career
func (c *Client) Career(ctx context.Context, req types.CareerRequest) (types.CareerResult, error) {
	raw, err := c.Call(ctx, http.MethodPost, EndpointCareer, req)
	if err != nil {
		return nil, err
	}

	env, err := peekStatus(EndpointCareer, raw)
	if err != nil {
		return nil, err
	}

	switch env.Status {
	case types.StatusSuccess:
		g := &types.CareerGuidance{}
		if err := decode(EndpointCareer, raw, g); err != nil {
			return nil, err
		}
		return g, nil
	case types.StatusUnknown:
		u := &types.UnknownCareer{}
		if err := decode(EndpointCareer, raw, u); err != nil {
			return nil, err
		}
		return u, nil
	}
	return &types.Rejection{Status: env.Status, Message: env.Message}, nil
}

// Recommend ranks careers for a set of skills
func (c *Client) Recommend(ctx context.Context, req types.RecommendRequest) (types.RecommendResult, error) {
	raw, err := c.Call(ctx, http.MethodPost, EndpointRecommend, req)
	if err != nil {
		return nil, err
	}
	rec, rej, err := successOr[types.Recommendations](EndpointRecommend, raw)
	switch {
	case err != nil:
		return nil, err
	case rej != nil:
		return rej, nil
	}
	return rec, nil
}

// SkillGap compares held skills against a target career
func (c *Client) SkillGap(ctx context.Context, req types.SkillGapRequest) (types.SkillGapResult, error) {
	raw, err := c.Call(ctx, http.MethodPost, EndpointSkillGap, req)
	if err != nil {
		return nil, err
	}
	gap, rej, err := successOr[types.SkillGap](EndpointSkillGap, raw)
	switch {
	case err != nil:
		return nil, err
	case rej != nil:
		return rej, nil
	}
	return gap, nil
}

// Compare fetches a side by side comparison of up to three careers
func (c *Client) Compare(ctx context.Context, req types.CompareRequest) (types.CompareResult, error) {
	raw, err := c.Call(ctx, http.MethodPost, EndpointCompare, req)
	if err != nil {
		return nil, err
	}
	cmp, rej, err := successOr[types.Comparison](EndpointCompare, raw)
	switch {
	case err != nil:
		return nil, err
	case rej != nil:
		return rej, nil
	}
	return cmp, nil
}

// Search queries the career catalog. Only an explicit "error" status is a
// rejection; any other payload is read as results. The submitted keyword
// is attached to the results as-is.
func (c *Client) Search(ctx context.Context, req types.SearchRequest) (types.SearchResult, error) {
	raw, err := c.Call(ctx, http.MethodPost, EndpointSearch, req)
	if err != nil {
		return nil, err
	}

	env, err := peekStatus(EndpointSearch, raw)
	if err != nil {
		return nil, err
	}
	if env.Status == types.StatusError {
		return &types.Rejection{Status: env.Status, Message: env.Message}, nil
	}

	res := &types.SearchResults{}
	if err := decode(EndpointSearch, raw, res); err != nil {
		return nil, err
	}
	res.Keyword = req.Keyword
	return res, nil
}

// Statistics fetches labor statistics for one career by name
func (c *Client) Statistics(ctx context.Context, name string) (types.StatisticsResult, error) {
	endpoint := EndpointStatistics + url.PathEscape(name)
	raw, err := c.Call(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	st, rej, err := successOr[types.CareerStatistics](endpoint, raw)
	switch {
	case err != nil:
		return nil, err
	case rej != nil:
		return rej, nil
	}
	return st, nil
}

// AIStatus reports which AI guidance providers the backend has configured
func (c *Client) AIStatus(ctx context.Context) (types.AIStatus, error) {
	raw, err := c.Call(ctx, http.MethodGet, EndpointAIStatus, nil)
	if err != nil {
		return types.AIStatus{}, err
	}

	var doc any
	if err := decode(EndpointAIStatus, raw, &doc); err != nil {
		return types.AIStatus{}, err
	}

	found, err := providersQuery.Search(doc)
	if err != nil {
		return types.AIStatus{}, fmt.Errorf("failed to evaluate %q: %w", providersExpr, err)
	}

	var status types.AIStatus
	names, _ := found.([]interface{})
	for _, n := range names {
		if s, ok := n.(string); ok && s != "" {
			status.Providers = append(status.Providers, s)
		}
	}
	return status, nil
}
