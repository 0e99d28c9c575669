// Package ingestion builds the serving catalog from cleaned assessment
// data. It parses the catalog JSON, validates every record, embeds the
// records in batches on a worker pool, and writes the vectored catalog
// to storage. Crawling and data cleaning happen upstream; this package
// consumes their output only.
package ingestion
