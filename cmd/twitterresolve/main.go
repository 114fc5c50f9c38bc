// Command twitterresolve shows which handler a twitter endpoint URI resolves to.
//
//	twitterresolve consumer "twitter://search" --keywords golang
//	twitterresolve producer "twitter://directmessage" --recipient-user bob
//	twitterresolve types
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
