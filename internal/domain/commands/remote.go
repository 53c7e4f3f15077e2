package commands

import (
	"fmt"
	"strings"

	"github.com/rios0rios0/podupdate/internal/domain/entities"
)

const (
	providerGitHub      = "github"
	providerAzureDevOps = "azuredevops"
	providerGitLab      = "gitlab"
)

// parseRemoteURL turns a Git remote URL into the repository it points at,
// with ProviderName set from the host.
func parseRemoteURL(rawURL string) (*entities.Repository, error) {
	cleaned := strings.TrimSuffix(strings.TrimSpace(rawURL), ".git")

	switch {
	case strings.Contains(cleaned, "dev.azure.com"), strings.Contains(cleaned, "visualstudio.com"):
		return parseAzureDevOpsURL(cleaned)
	case strings.Contains(cleaned, "github.com"):
		return parseHostedURL(cleaned, "github.com", providerGitHub)
	case strings.Contains(cleaned, "gitlab.com"):
		return parseHostedURL(cleaned, "gitlab.com", providerGitLab)
	}

	return nil, fmt.Errorf("unsupported git remote URL: %s", rawURL)
}

// parseAzureDevOpsURL handles git@ssh.dev.azure.com:v3/org/project/repo,
// org@vs-ssh.visualstudio.com:v3/org/project/repo,
// https://[user@]dev.azure.com/org/project/_git/repo and
// https://org.visualstudio.com/[collection/]project/_git/repo.
func parseAzureDevOpsURL(url string) (*entities.Repository, error) {
	if _, path, found := strings.Cut(url, ":v3/"); found {
		parts := strings.Split(path, "/")
		if len(parts) < 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" { //nolint:mnd // org/project/repo
			return nil, fmt.Errorf("invalid Azure DevOps SSH URL: %s", url)
		}
		return &entities.Repository{
			Organization: parts[0],
			Project:      parts[1],
			Name:         parts[2],
			ProviderName: providerAzureDevOps,
		}, nil
	}

	rest := url
	if _, after, found := strings.Cut(url, "://"); found {
		rest = after
	}
	parts := strings.Split(rest, "/")
	for i, p := range parts {
		if p != "_git" || i+1 >= len(parts) || i < 2 {
			continue
		}
		org := parts[i-2]
		if host := hostOf(parts[0]); strings.HasSuffix(host, ".visualstudio.com") {
			org = strings.TrimSuffix(host, ".visualstudio.com")
		}
		return &entities.Repository{
			Organization: org,
			Project:      parts[i-1],
			Name:         parts[i+1],
			ProviderName: providerAzureDevOps,
		}, nil
	}

	return nil, fmt.Errorf("invalid Azure DevOps URL: %s", url)
}

// hostOf strips userinfo and port from a URL authority.
func hostOf(authority string) string {
	if _, host, found := strings.Cut(authority, "@"); found {
		authority = host
	}
	host, _, _ := strings.Cut(authority, ":")
	return host
}

// parseHostedURL handles owner/repo style SSH and HTTPS remotes.
func parseHostedURL(url, hostname, provider string) (*entities.Repository, error) {
	var pathPart string

	if strings.HasPrefix(url, "git@") {
		_, after, found := strings.Cut(url, ":")
		if !found {
			return nil, fmt.Errorf("invalid SSH URL: %s", url)
		}
		pathPart = after
	} else {
		_, after, found := strings.Cut(url, hostname)
		if !found {
			return nil, fmt.Errorf("hostname %s not found in URL: %s", hostname, url)
		}
		pathPart = strings.TrimPrefix(after, "/")
	}

	segments := strings.Split(pathPart, "/")
	if len(segments) < 2 || segments[0] == "" || segments[1] == "" { //nolint:mnd // need org + repo
		return nil, fmt.Errorf("cannot extract org/repo from URL: %s", url)
	}

	return &entities.Repository{
		Organization: segments[0],
		Name:         segments[1],
		ProviderName: provider,
	}, nil
}
