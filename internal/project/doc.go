// Package project extracts recently opened projects from JetBrains IDE
// configuration files.
//
// Recent projects file layouts:
//
// Releases have stored project paths in two components, each in two
// shapes. Every combination is probed, in the order given by Sources:
//
//	<component name="RecentProjectsManager">
//	  <option name="recentPaths">
//	    <list>
//	      <option value="$USER_HOME$/code/app" />
//	    </list>
//	  </option>
//	  <option name="additionalInfo">
//	    <map>
//	      <entry key="$USER_HOME$/code/app">...</entry>
//	    </map>
//	  </option>
//	</component>
//
// The same shapes may appear under RecentDirectoryProjectsManager.
//
// Records:
//
// Paths are normalized ($USER_HOME$ becomes ~) and deduplicated, first
// occurrence wins. Each record's Name and Icon are read from the project's
// own .idea directory at call time. Score is always 0.
//
// Merging:
//
// Catalog combines the output of several files (one per installed IDE)
// with the same first-wins rule.
package project
