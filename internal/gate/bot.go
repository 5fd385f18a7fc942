// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gate

import "strings"

// botMarkers are lower-case substrings found in the User-Agent of crawlers,
// scripted HTTP clients and headless browsers.
var botMarkers = []string{
	"bot",
	"crawl",
	"spider",
	"slurp",
	"scrapy",
	"curl/",
	"wget/",
	"httpie/",
	"python-requests",
	"python-urllib",
	"aiohttp",
	"go-http-client",
	"okhttp",
	"java/",
	"libwww",
	"headlesschrome",
	"phantomjs",
	"selenium",
	"puppeteer",
}

// IsBot reports whether userAgent looks automated. An empty User-Agent is
// treated as automated.
func IsBot(userAgent string) bool {
	ua := strings.ToLower(strings.TrimSpace(userAgent))
	if ua == "" {
		return true
	}

	for _, marker := range botMarkers {
		if strings.Contains(ua, marker) {
			return true
		}
	}

	return false
}
