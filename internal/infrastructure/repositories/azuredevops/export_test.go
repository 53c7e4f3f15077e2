package azuredevops

import (
	"time"

	"github.com/rios0rios0/podupdate/internal/domain/repositories"
)

// ClientTimeout returns the timeout configured on the provider HTTP client.
func ClientTimeout(provider repositories.ProviderRepository) time.Duration {
	return provider.(*AzureDevOpsProviderRepository).httpClient.Timeout
}
