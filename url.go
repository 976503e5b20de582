package slicepager

import "fmt"

// PageURL formats "<baseURL>?<queryParam>=<page>" without any escaping or
// range checks.
//
// Example: PageURL("/products", "pg", 3) returns "/products?pg=3".
func PageURL(baseURL, queryParam string, page int) string {
	return fmt.Sprintf("%s?%s=%d", baseURL, queryParam, page)
}
