// Package services contains the crawl orchestration: the single
// extract-transform-load pass from GitHub READMEs to the search index.
package services
