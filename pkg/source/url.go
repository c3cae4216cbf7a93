package source

import (
	"net/url"
	"regexp"
	"strings"
)

const spreadsheetsPath = "/spreadsheets/"

var (
	publishedIDRegexp = regexp.MustCompile(`/d/e/([^/]+)`)
	documentIDRegexp  = regexp.MustCompile(`/d/([^/]+)`)
)

// NormalizeSheetURL turns a shared spreadsheet link into its CSV export URL.
//
// Links that already export CSV, links that are not spreadsheets and links
// without a document id are returned unchanged. The sheet id is taken from
// the gid query parameter or, failing that, from the URL fragment.
func NormalizeSheetURL(rawURL string) string {
	if strings.Contains(rawURL, "/export") || strings.Contains(rawURL, "output=csv") {
		return rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" || !strings.Contains(u.Path, spreadsheetsPath) {
		return rawURL
	}

	gid := sheetID(u)
	base := u.Scheme + "://" + u.Host + "/spreadsheets/d/"

	if m := publishedIDRegexp.FindStringSubmatch(u.Path); m != nil {
		return withSheetID(base+"e/"+m[1]+"/pub?output=csv", gid)
	}

	query := u.Query()
	documentID := query.Get("id")
	if m := documentIDRegexp.FindStringSubmatch(u.Path); m != nil {
		documentID = m[1]
	}
	if documentID == "" {
		return rawURL
	}
	return withSheetID(base+documentID+"/export?format=csv", gid)
}

func sheetID(u *url.URL) string {
	if gid := u.Query().Get("gid"); gid != "" {
		return gid
	}
	if u.Fragment == "" {
		return ""
	}
	// partially valid fragments still give up their gid
	fragment, _ := url.ParseQuery(u.Fragment)
	return fragment.Get("gid")
}

func withSheetID(exportURL, gid string) string {
	if gid == "" {
		return exportURL
	}
	return exportURL + "&gid=" + url.QueryEscape(gid)
}
