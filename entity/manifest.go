package entity

type Manifest struct {
	Version                        string
	MobileAssetContentPath         string
	MobileWorldContentPaths        map[string]string
	JSONWorldContentPaths          map[string]string
	JSONWorldComponentContentPaths map[string]map[string]string
	MobileClanBannerDatabasePath   string
	MobileGearCDN                  map[string]string
}
