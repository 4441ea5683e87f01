// Package remote provides the HTTP adapter for the remote search service.
//
// The Gateway implements driven.SearchGateway against three endpoints:
//
//	GET  {base}/search/query?query=<text>          -> JSON array of results
//	GET  {base}/search/suggestions?prefix=<text>   -> JSON array of strings
//	POST {base}/search/index?docId=<id>&content=<c> -> any 2xx is success
//
// Network failures become *domain.TransportError and non-2xx answers become
// *domain.ServiceError. Nothing is cached or retried.
package remote
