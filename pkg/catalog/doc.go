// Package catalog provides the registry of free-tier models offered through the
// OpenRouter gateway. The registry is immutable once built and safe for concurrent
// reads; operators extend the free-tier offering by editing the catalog file, not
// the routing logic.
package catalog
