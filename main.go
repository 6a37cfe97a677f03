package main

import "github.com/killallgit/podcast-sync/cmd"

// @title           Podcast Sync API
// @version         1.0.0
// @description     Keeps stored podcast episodes in step with their RSS feeds
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/podcast-sync
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
