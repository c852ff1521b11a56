// Package useragent classifies user-agent strings into device, browser and
// OS labels using ordered substring rule tables. The tables are evaluated
// top to bottom and the first match wins, so the ordering is part of the
// contract: a UA containing both "Chrome" and "Safari" is Chrome, and Edge
// UAs (which carry "Chrome") are likewise reported as Chrome. Tests pin
// these ambiguities; do not reorder the tables to "fix" them.
package useragent

import "strings"

const (
	DeviceMobile  = "Mobile"
	DeviceTablet  = "Tablet"
	DeviceDesktop = "Desktop"

	Unknown = "Unknown"
)

type rule struct {
	tokens []string
	label  string
}

// Device rules match case-insensitively, mirroring the Mobi|Android and
// iPad|Tablet patterns the product started with.
var deviceRules = []rule{
	{tokens: []string{"mobi", "android"}, label: DeviceMobile},
	{tokens: []string{"ipad", "tablet"}, label: DeviceTablet},
}

// Browser and OS rules match case-sensitively.
var browserRules = []rule{
	{tokens: []string{"Chrome"}, label: "Chrome"},
	{tokens: []string{"Safari"}, label: "Safari"},
	{tokens: []string{"Firefox"}, label: "Firefox"},
	{tokens: []string{"MSIE", "Trident/"}, label: "IE"},
	{tokens: []string{"Edge"}, label: "Edge"},
}

var osRules = []rule{
	{tokens: []string{"Win"}, label: "Windows"},
	{tokens: []string{"Mac"}, label: "macOS"},
	{tokens: []string{"Linux"}, label: "Linux"},
	{tokens: []string{"Android"}, label: "Android"},
	{tokens: []string{"like Mac"}, label: "iOS"},
}

func match(ua string, rules []rule, fallback string) string {
	for _, r := range rules {
		for _, tok := range r.tokens {
			if strings.Contains(ua, tok) {
				return r.label
			}
		}
	}
	return fallback
}

// Device returns Mobile, Tablet or Desktop. Desktop is the default.
func Device(ua string) string {
	return match(strings.ToLower(ua), deviceRules, DeviceDesktop)
}

// Browser returns the browser family name or Unknown.
func Browser(ua string) string {
	return match(ua, browserRules, Unknown)
}

// OS returns the operating system name or Unknown.
func OS(ua string) string {
	return match(ua, osRules, Unknown)
}

// ClientIP picks the requester's address from proxy headers, falling back
// to the socket address with any port stripped.
func ClientIP(remoteAddr, xForwardedFor, xRealIP string) string {
	if xForwardedFor != "" {
		if first, _, found := strings.Cut(xForwardedFor, ","); found || first != "" {
			return strings.TrimSpace(first)
		}
	}

	if xRealIP != "" {
		return xRealIP
	}

	if idx := strings.LastIndex(remoteAddr, ":"); idx != -1 {
		return remoteAddr[:idx]
	}

	return remoteAddr
}
