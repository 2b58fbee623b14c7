// Package gitlab implements domain.Tracker on top of the GitLab REST API.
package gitlab

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/runoshun/glissue/internal/domain"
	gl "gitlab.com/gitlab-org/api/client-go"
)

// Ensure Client implements domain.Tracker.
var _ domain.Tracker = (*Client)(nil)

// pageSize is the number of records requested per page on list calls.
const pageSize = 100

// Client is a GitLab tracker bound to one profile.
// Every call is bounded by the profile timeout.
type Client struct {
	api     *gl.Client
	logger  domain.Logger
	timeout time.Duration
}

// NewClient creates a client for the profile's GitLab instance.
// No request is made until the first call.
func NewClient(p domain.Profile, logger domain.Logger) (*Client, error) {
	if p.URL == "" {
		return nil, domain.ErrEmptyURL
	}

	api, err := gl.NewClient(p.PrivateToken,
		gl.WithBaseURL(p.URL),
		gl.WithHTTPClient(newHTTPClient(p.SSLVerify)),
	)
	if err != nil {
		return nil, fmt.Errorf("create gitlab client: %w", err)
	}

	timeout := p.Timeout
	if timeout <= 0 {
		timeout = domain.DefaultTimeout
	}
	return &Client{api: api, logger: logger, timeout: timeout}, nil
}

func newHTTPClient(sslVerify bool) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !sslVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // ssl_verify = false in the profile
	}
	return &http.Client{Transport: transport}
}

// call bounds ctx by the client timeout.
func (c *Client) call(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.timeout)
}

// Authenticate checks the token against the current-user endpoint.
func (c *Client) Authenticate(ctx context.Context) (int, error) {
	ctx, cancel := c.call(ctx)
	defer cancel()

	u, resp, err := c.api.Users.CurrentUser(gl.WithContext(ctx))
	if err != nil {
		if code := statusCode(resp); code == http.StatusUnauthorized || code == http.StatusForbidden {
			return 0, fmt.Errorf("%w: %v", domain.ErrAuth, err)
		}
		return 0, wrapError("authenticate", resp, err)
	}
	c.logger.Debug("gitlab", fmt.Sprintf("authenticated as %s (id %d)", u.Username, u.ID))
	return u.ID, nil
}

// GetUser retrieves a user by ID.
func (c *Client) GetUser(ctx context.Context, id int) (*domain.User, error) {
	ctx, cancel := c.call(ctx)
	defer cancel()

	u, resp, err := c.api.Users.GetUser(id, gl.GetUsersOptions{}, gl.WithContext(ctx))
	if err != nil {
		return nil, wrapError(fmt.Sprintf("get user %d", id), resp, err)
	}
	return &domain.User{ID: u.ID, Username: u.Username, Name: u.Name}, nil
}

// GetProject retrieves a project by numeric ID or full path.
func (c *Client) GetProject(ctx context.Context, ref string) (*domain.Project, error) {
	ctx, cancel := c.call(ctx)
	defer cancel()

	p, resp, err := c.api.Projects.GetProject(strings.TrimSpace(ref), nil, gl.WithContext(ctx))
	if err != nil {
		return nil, wrapError(fmt.Sprintf("get project %s", ref), resp, err)
	}
	return &domain.Project{
		ID:                p.ID,
		Name:              p.Name,
		PathWithNamespace: p.PathWithNamespace,
		WebURL:            p.WebURL,
	}, nil
}

// GetMembership retrieves the user's direct membership on the project.
// A missing membership record is reported as domain.ErrNotMember.
func (c *Client) GetMembership(ctx context.Context, projectID, userID int) (*domain.Membership, error) {
	ctx, cancel := c.call(ctx)
	defer cancel()

	m, resp, err := c.api.ProjectMembers.GetProjectMember(projectID, userID, gl.WithContext(ctx))
	if err != nil {
		if statusCode(resp) == http.StatusNotFound {
			return nil, domain.ErrNotMember
		}
		return nil, wrapError("get membership", resp, err)
	}
	return &domain.Membership{UserID: m.ID, AccessLevel: int(m.AccessLevel)}, nil
}

// ListMilestones lists the project milestones with the given iid.
// A non-numeric iid matches nothing.
func (c *Client) ListMilestones(ctx context.Context, projectID int, iid string) ([]domain.Milestone, error) {
	want, err := strconv.Atoi(strings.TrimSpace(iid))
	if err != nil {
		c.logger.Debug("gitlab", fmt.Sprintf("milestone iid %q is not numeric", iid))
		return []domain.Milestone{}, nil
	}

	ctx, cancel := c.call(ctx)
	defer cancel()

	opt := &gl.ListMilestonesOptions{
		ListOptions: gl.ListOptions{PerPage: pageSize, Page: 1},
		IIDs:        gl.Ptr([]int{want}),
	}
	milestones := []domain.Milestone{}
	for {
		page, resp, err := c.api.Milestones.ListMilestones(projectID, opt, gl.WithContext(ctx))
		if err != nil {
			return nil, wrapError("list milestones", resp, err)
		}
		for _, m := range page {
			if m.IID != want {
				continue
			}
			milestones = append(milestones, domain.Milestone{
				ID:    m.ID,
				IID:   m.IID,
				Title: m.Title,
				State: m.State,
			})
		}
		if resp == nil || resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}
	return milestones, nil
}

// ListProjectLabels lists the labels defined on the project itself,
// excluding labels inherited from groups.
func (c *Client) ListProjectLabels(ctx context.Context, projectID int) ([]domain.Label, error) {
	ctx, cancel := c.call(ctx)
	defer cancel()

	opt := &gl.ListLabelsOptions{
		ListOptions:           gl.ListOptions{PerPage: pageSize, Page: 1},
		IncludeAncestorGroups: gl.Ptr(false),
	}
	var labels []domain.Label
	for {
		page, resp, err := c.api.Labels.ListLabels(projectID, opt, gl.WithContext(ctx))
		if err != nil {
			return nil, wrapError("list labels", resp, err)
		}
		for _, l := range page {
			if !l.IsProjectLabel {
				continue
			}
			labels = append(labels, domain.Label{ID: l.ID, Name: l.Name})
		}
		if resp == nil || resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}
	return domain.IndexLabels(labels), nil
}

// CreateIssue creates an issue in the project.
func (c *Client) CreateIssue(ctx context.Context, projectID int, opts domain.CreateIssueOptions) (*domain.Issue, error) {
	ctx, cancel := c.call(ctx)
	defer cancel()

	labels := gl.LabelOptions(opts.Labels)
	if labels == nil {
		labels = gl.LabelOptions{}
	}
	issue, resp, err := c.api.Issues.CreateIssue(projectID, &gl.CreateIssueOptions{
		Title:       gl.Ptr(opts.Title),
		Description: gl.Ptr(opts.Description),
		MilestoneID: gl.Ptr(opts.MilestoneID),
		Labels:      &labels,
	}, gl.WithContext(ctx))
	if err != nil {
		return nil, wrapError(fmt.Sprintf("project %d", projectID), resp, err)
	}
	c.logger.Debug("gitlab", fmt.Sprintf("created issue #%d in project %d", issue.IID, projectID))
	return &domain.Issue{
		ID:     issue.ID,
		IID:    issue.IID,
		Title:  issue.Title,
		WebURL: issue.WebURL,
	}, nil
}

func statusCode(resp *gl.Response) int {
	if resp == nil || resp.Response == nil {
		return 0
	}
	return resp.StatusCode
}

// wrapError maps HTTP failures to domain errors and keeps the GitLab message.
func wrapError(op string, resp *gl.Response, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: request timed out: %w", op, err)
	}
	switch statusCode(resp) {
	case http.StatusUnauthorized:
		return fmt.Errorf("%s: %w: %v", op, domain.ErrAuth, err)
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w: %v", op, domain.ErrNotFound, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
