// Package pypi provides a client for PEP 503 simple repository indexes.
//
// # Overview
//
// Any index implementing the simple API works: pypi.org, test.pypi.org, a
// devpi or Artifactory mirror, or a directory of HTML files served over
// HTTP. Each [Client] talks to exactly one index base URL.
//
// # Usage
//
//	client := pypi.NewClient(pypi.DefaultIndexURL, httpClient, cacheBackend, time.Hour)
//	info, err := client.FetchProject(ctx, "Django", false)  // false = use cache
//	if errors.Is(err, integrations.ErrNotFound) {
//	    // try the next index
//	}
//	fmt.Println(info.Versions)
//
// # Content Negotiation
//
// Requests prefer the PEP 691 JSON form and accept HTML. JSON responses are
// read with gjson; HTML responses with goquery. When the PEP 700 "versions"
// key is present it is authoritative, otherwise versions are derived from
// distribution filenames (sdists and wheels; eggs and installers are
// ignored).
//
// # Yanked Files
//
// Files marked yanked (PEP 592: data-yanked in HTML, "yanked" in JSON) never
// contribute a version. A version whose every file is yanked is dropped even
// when listed in "versions".
package pypi
