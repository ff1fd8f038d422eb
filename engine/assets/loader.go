package assets

import "github.com/spaghettifunk/anima-ffp/engine/renderer/metadata"

type Loader interface {
	// params is loader specific, nil selects the defaults
	Load(path string, params interface{}) (*metadata.Resource, error)
	Unload(*metadata.Resource) error
}
