package factory

import (
	"encoding/json"

	"github.com/kofuk/bungie/entity"
)

func stringMap(o object) map[string]string {
	if o == nil {
		return nil
	}
	out := make(map[string]string, len(o))
	for k := range o {
		out[k] = o.str(k)
	}
	return out
}

func DeserializeManifest(raw json.RawMessage) (entity.Manifest, error) {
	return decodeWith(raw, func(_ *reader, o object) entity.Manifest {
		m := entity.Manifest{
			Version:                      o.str("version"),
			MobileAssetContentPath:       o.str("mobileAssetContentPath"),
			MobileWorldContentPaths:      stringMap(o.obj("mobileWorldContentPaths")),
			JSONWorldContentPaths:        stringMap(o.obj("jsonWorldContentPaths")),
			MobileClanBannerDatabasePath: o.str("mobileClanBannerDatabasePath"),
			MobileGearCDN:                stringMap(o.obj("mobileGearCDN")),
		}
		if comp := o.obj("jsonWorldComponentContentPaths"); comp != nil {
			m.JSONWorldComponentContentPaths = make(map[string]map[string]string, len(comp))
			for lang := range comp {
				m.JSONWorldComponentContentPaths[lang] = stringMap(comp.obj(lang))
			}
		}
		return m
	})
}
