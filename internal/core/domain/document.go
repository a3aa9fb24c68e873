// Package domain holds the core types of the verified-answers pipeline.
package domain

// Answer is the unit persisted to the search index. One Answer is built for
// each verified-answer entry whose referenced file was fetched successfully;
// partial documents are never created. The JSON field names become the
// index's schema implicitly.
type Answer struct {
	// Repo is the repository the answer was found in.
	Repo string `json:"repo"`

	// File is the repository-relative path of the answer file.
	File string `json:"file"`

	// Title is the bold title from the README marker, whitespace-trimmed.
	Title string `json:"title"`

	// Verified is always true. The field exists so the index can filter
	// verified answers from other document types sharing the instance.
	Verified bool `json:"verified"`

	// Content is the full decoded text of the answer file.
	Content string `json:"content"`

	// URL is the browse URL of the file on github.com.
	URL string `json:"url"`
}
