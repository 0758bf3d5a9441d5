package overlay

import (
	"encoding/xml"
	"path"
	"strings"

	"github.com/spf13/afero"

	"github.com/treebump/treebump/internal/log"
)

const metadataFile = "metadata.xml"

type pkgMetadata struct {
	XMLName  xml.Name `xml:"pkgmetadata"`
	Upstream struct {
		RemoteIDs []remoteID `xml:"remote-id"`
	} `xml:"upstream"`
}

type remoteID struct {
	Type  string `xml:"type,attr"`
	Value string `xml:",chardata"`
}

// readRemoteRepo extracts the github remote-id from a package's metadata.xml, or ""
// when the file is absent, malformed, or has no github upstream.
func readRemoteRepo(fs afero.Fs, pkgPath string) string {
	contents, err := afero.ReadFile(fs, path.Join(pkgPath, metadataFile))
	if err != nil {
		return ""
	}

	var meta pkgMetadata
	if err := xml.Unmarshal(contents, &meta); err != nil {
		log.Warnf("malformed %s in %q: %+v", metadataFile, pkgPath, err)
		return ""
	}

	for _, id := range meta.Upstream.RemoteIDs {
		if id.Type == "github" {
			return strings.TrimSpace(id.Value)
		}
	}
	return ""
}
