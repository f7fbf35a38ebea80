package cmd

const (
	RootCmdName  = "numbeo-prices"
	RootCmdShort = "Fetch and display Numbeo city prices"
	RootCmdLong  = `Fetches cost of living data from the Numbeo API for a given city and
country, and displays the prices grouped by category in a formatted
terminal output.

The API key is taken from the --api-key flag, or from the
NUMBEO_API_KEY environment variable when the flag is not set.`
	RootCmdExample = `  numbeo-prices --city "San Francisco, CA" --country "United States" --api-key YOUR_KEY
  numbeo-prices --city "London" --country "United Kingdom" --api-key YOUR_KEY

  export NUMBEO_API_KEY=your_api_key
  numbeo-prices --city "San Francisco, CA" --country "United States"`
)

// EnvAPIKey is the environment variable read when --api-key is not given.
const EnvAPIKey = "NUMBEO_API_KEY"
