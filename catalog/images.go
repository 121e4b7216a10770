package catalog

import (
	"context"
	"log"

	"github.com/MdSaifulIslamMSI/Flipkart-Clone/shared/models"
)

// LogImageReleaser records release requests instead of calling the image
// host. Deployments wire the real host's client in its place.
type LogImageReleaser struct{}

func (LogImageReleaser) Release(_ context.Context, images []models.Image) error {
	for _, image := range images {
		log.Printf("Releasing image asset %s", image.PublicID)
	}
	return nil
}
