package services

import "github.com/prometheus/client_golang/prometheus"

var (
	feedResponses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "podcast_feed_responses_total",
			Help: "Feed requests by outcome (redirect or rss).",
		},
		[]string{"outcome"},
	)
	listingRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "podcast_listing_requests_total",
			Help: "Served podcast listings by view (index or view).",
		},
		[]string{"view"},
	)
)

func init() {
	prometheus.MustRegister(feedResponses, listingRequests)
}
