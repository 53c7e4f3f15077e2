package azuredevops

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rios0rios0/podupdate/internal/domain/entities"
	"github.com/rios0rios0/podupdate/internal/domain/repositories"
)

const (
	providerName   = "azuredevops"
	defaultBaseURL = "https://dev.azure.com"
	apiVersion     = "7.0"
)

type createPullRequestBody struct {
	SourceRefName string `json:"sourceRefName"`
	TargetRefName string `json:"targetRefName"`
	Title         string `json:"title"`
	Description   string `json:"description"`
}

type pullRequestResponse struct {
	PullRequestID int    `json:"pullRequestId"`
	Title         string `json:"title"`
	Status        string `json:"status"`
}

// AzureDevOpsProviderRepository implements repositories.ProviderRepository
// against the Azure DevOps REST API.
type AzureDevOpsProviderRepository struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewAzureDevOpsProviderRepository creates a provider for dev.azure.com.
func NewAzureDevOpsProviderRepository(token string) repositories.ProviderRepository {
	return NewAzureDevOpsProviderRepositoryWithBaseURL(token, defaultBaseURL)
}

// NewAzureDevOpsProviderRepositoryWithBaseURL targets another server root.
func NewAzureDevOpsProviderRepositoryWithBaseURL(token, baseURL string) repositories.ProviderRepository {
	return &AzureDevOpsProviderRepository{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{},
	}
}

func (p *AzureDevOpsProviderRepository) Name() string { return providerName }

func (p *AzureDevOpsProviderRepository) MatchesURL(rawURL string) bool {
	return strings.Contains(rawURL, "dev.azure.com") || strings.Contains(rawURL, "visualstudio.com")
}

func (p *AzureDevOpsProviderRepository) PushURL(repo entities.Repository) string {
	return fmt.Sprintf(
		"https://pat:%s@dev.azure.com/%s/%s/_git/%s",
		p.token, repo.Organization, repo.Project, repo.Name,
	)
}

func (p *AzureDevOpsProviderRepository) CreatePullRequest(
	ctx context.Context,
	repo entities.Repository,
	input entities.PullRequestInput,
) (*entities.PullRequest, error) {
	body := createPullRequestBody{
		SourceRefName: withRefsPrefix(input.SourceBranch),
		TargetRefName: withRefsPrefix(input.TargetBranch),
		Title:         input.Title,
		Description:   input.Description,
	}

	endpoint := fmt.Sprintf(
		"/%s/%s/_apis/git/repositories/%s/pullrequests?api-version=%s",
		repo.Organization, repo.Project, repo.Name, apiVersion,
	)

	resp, err := p.doRequest(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, err
	}

	var pr pullRequestResponse
	if unmarshalErr := json.Unmarshal(resp, &pr); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse PR response: %w", unmarshalErr)
	}

	return &entities.PullRequest{
		ID:    pr.PullRequestID,
		Title: pr.Title,
		URL: fmt.Sprintf(
			"%s/%s/%s/_git/%s/pullrequest/%d",
			p.baseURL, repo.Organization, repo.Project, repo.Name, pr.PullRequestID,
		),
		Status: pr.Status,
	}, nil
}

func (p *AzureDevOpsProviderRepository) doRequest(
	ctx context.Context,
	method, endpoint string,
	body interface{},
) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Set Basic Auth with PAT
	auth := base64.StdEncoding.EncodeToString([]byte(":" + p.token))
	req.Header.Set("Authorization", "Basic "+auth)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if !entities.IsSuccessStatus(resp.StatusCode) {
		return nil, &entities.ApiStatusError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("API error: %s", strings.TrimSpace(string(respBody))),
		}
	}

	return respBody, nil
}

func withRefsPrefix(branch string) string {
	if strings.HasPrefix(branch, "refs/heads/") {
		return branch
	}
	return "refs/heads/" + branch
}
