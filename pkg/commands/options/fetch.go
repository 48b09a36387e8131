package options

import (
	"github.com/spf13/cobra"
)

// FetchOptions controls how the day's data is obtained.
type FetchOptions struct {
	Offline bool
}

// AddFetchArgs registers flags that affect fetching.
func AddFetchArgs(cmd *cobra.Command, o *FetchOptions) {
	cmd.Flags().BoolVarP(&o.Offline, "offline", "o", false,
		"Serve the day's data from the local cache instead of Garmin Connect.")
}
