// Package queue provides the bounded priority queues used by the graph search.
package queue
