package main

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/alitto/pond/v2"

	"github.com/mugisham37/moses-mugisha/pkg/models"
)

/*
collectImageUrls gathers every image URL a project references: the
thumbnail, the four descriptor sources, and each srcset variant.
*/
func collectImageUrls(projects []models.Project) []string {
	seen := map[string]bool{}
	urls := []string{}

	add := func(url string) {
		if url == "" || seen[url] {
			return
		}

		seen[url] = true
		urls = append(urls, url)
	}

	for _, project := range projects {
		add(project.ThumbnailImage)

		descriptors := []models.Image{
			project.HeroImage,
			project.SecondaryImage,
			project.ProcessImage,
			project.ClosingImage,
		}

		for _, img := range descriptors {
			add(img.Src)

			for _, entry := range strings.Split(img.SrcSet, ", ") {
				if url, _, ok := strings.Cut(entry, " "); ok {
					add(url)
				}
			}
		}
	}

	return urls
}

/*
verifyImages checks every catalog image URL with a HEAD request and
returns the ones that failed or came back with an error status.
*/
func verifyImages(projects []models.Project, maxWorkers int) []string {
	var (
		mu     sync.Mutex
		broken []string
	)

	urls := collectImageUrls(projects)
	pool := pond.NewPool(maxWorkers)

	client := &http.Client{
		Timeout: time.Second * 10,
	}

	for _, url := range urls {
		pool.Submit(func() {
			response, err := client.Head(url)

			if err != nil {
				mu.Lock()
				broken = append(broken, url)
				mu.Unlock()
				return
			}

			_ = response.Body.Close()

			if response.StatusCode >= http.StatusBadRequest {
				mu.Lock()
				broken = append(broken, url)
				mu.Unlock()
			}
		})
	}

	_ = pool.Stop().Wait()

	return broken
}
