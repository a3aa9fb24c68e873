// Package driven defines the capability interfaces the crawl service
// depends on. Adapters implement them against the real collaborators;
// service tests substitute in-memory fakes.
package driven
