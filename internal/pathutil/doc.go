// Package pathutil provides helpers for building OpenAPI path templates from
// Postman URL fragments.
//
// Postman marks variables with double braces ({{id}}) anywhere in a URL and
// with a leading colon (:id) for whole path segments. OpenAPI path templates
// use single braces ({id}). The helpers here translate between the two
// dialects, substitute known variables and join segments without producing
// doubled slashes.
package pathutil
