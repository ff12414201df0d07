// Package tenancy derives a tenant slug from an inbound request.
package tenancy

import "strings"

// ResolveSlug returns the tenant slug for a request, preferring the host
// header and falling back to the explicit query parameter. Empty means no
// tenant could be resolved.
func ResolveSlug(host, queryParam, baseDomain, localSuffix string) string {
	if slug := SlugFromHost(host, baseDomain, localSuffix); slug != "" {
		return slug
	}
	return queryParam
}

// SlugFromHost extracts the subdomain slug from a host header.
//
// For hosts under the wildcard base domain (<slug>.zenbase.online) the
// prefix labels joined by "." form the slug, which keeps nested
// subdomains working. Hosts under the single-label local dev suffix
// (<slug>.localhost) use the first label. Anything else yields "".
func SlugFromHost(host, baseDomain, localSuffix string) string {
	if host == "" {
		return ""
	}

	// Strip port if present
	hostname := host
	if i := strings.IndexByte(hostname, ':'); i >= 0 {
		hostname = hostname[:i]
	}

	parts := strings.Split(hostname, ".")
	base := strings.Split(baseDomain, ".")

	if len(base) == 2 && len(parts) >= 3 &&
		parts[len(parts)-2] == base[0] && parts[len(parts)-1] == base[1] {
		return strings.Join(parts[:len(parts)-2], ".")
	}

	if len(parts) >= 2 && parts[len(parts)-1] == localSuffix {
		return parts[0]
	}

	return ""
}
