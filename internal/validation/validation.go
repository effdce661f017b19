package validation

import (
	"net"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxQueryLength caps accepted query text, in runes.
const MaxQueryLength = 1000

// UserIDPattern defines the valid external user identifier format.
var UserIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidateUserID checks if an external user identifier is acceptable.
func ValidateUserID(id string) bool {
	if id == "" || len(id) > 64 {
		return false
	}
	return UserIDPattern.MatchString(id)
}

// ValidateQueryText checks the raw query text before it reaches the
// pipeline. Blank input is a client-side validation failure.
func ValidateQueryText(text string) (bool, string) {
	if strings.TrimSpace(text) == "" {
		return false, "query text is required"
	}
	if utf8.RuneCountInString(text) > MaxQueryLength {
		return false, "query text is too long"
	}
	return true, ""
}

// ValidateURL checks if a URL is valid and uses an allowed scheme (http/https only).
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}

// IsPrivateIP checks if an IP address is in a private/reserved range.
// Used to prevent SSRF when checking catalog URLs.
func IsPrivateIP(ip net.IP) bool {
	if ip == nil {
		return false
	}

	if ip.IsLoopback() {
		return true
	}
	if ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() {
		return true
	}
	if ip.IsPrivate() {
		return true
	}
	if ip.IsUnspecified() {
		return true
	}

	// Cloud metadata endpoints
	if ip.Equal(net.ParseIP("169.254.169.254")) {
		return true
	}
	if ip.Equal(net.ParseIP("168.63.129.16")) {
		return true
	}

	return false
}

// IsPrivateHost checks if a hostname resolves to a private IP address.
func IsPrivateHost(host string) (bool, error) {
	hostname := host
	if h, _, err := net.SplitHostPort(host); err == nil {
		hostname = h
	}

	ips, err := net.LookupIP(hostname)
	if err != nil {
		// If we can't resolve, be conservative and block
		return true, err
	}

	for _, ip := range ips {
		if IsPrivateIP(ip) {
			return true, nil
		}
	}

	return false, nil
}

// ValidateURLForHealthCheck validates a URL is safe for health checking.
// Blocks private IPs, localhost, and cloud metadata endpoints.
func ValidateURLForHealthCheck(urlStr string) (bool, string) {
	valid, msg := ValidateURL(urlStr)
	if !valid {
		return false, msg
	}

	u, _ := url.Parse(urlStr)

	isPrivate, err := IsPrivateHost(u.Host)
	if err != nil {
		return false, "Cannot resolve hostname"
	}
	if isPrivate {
		return false, "URL points to a private or reserved IP address"
	}

	return true, ""
}
