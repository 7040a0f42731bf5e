package main

// lsTaskLogs finds task logs under the given directories, optionally
// filtering by applicationID (YARN) or jobID (pre-YARN).
//
// Matches for stderr logs come first, followed by every syslog. Each
// stderr match points at the corresponding syslog match; stderr logs
// without one are dropped, since interpretation won't report an error
// without syslog corroboration anyway.
func lsTaskLogs(fs logFS, dirs []string, applicationID, jobID string) ([]*logMatch, error) {
	var stderrLogs []*logMatch
	var syslogs []*logMatch

	for _, dir := range dirs {
		err := fs.Ls(dir, func(path string) error {
			match := matchTaskLogPath(path, applicationID, jobID)
			if match == nil {
				return nil
			}
			switch match.logType {
			case logTypeStderr:
				stderrLogs = append(stderrLogs, match)
			case logTypeSyslog:
				syslogs = append(syslogs, match)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	keyToSyslog := make(map[logKey]*logMatch, len(syslogs))
	for _, match := range syslogs {
		keyToSyslog[match.key()] = match
	}

	matches := make([]*logMatch, 0, len(stderrLogs)+len(syslogs))
	for _, match := range stderrLogs {
		if syslog := keyToSyslog[match.key()]; syslog != nil {
			match.syslog = syslog
			matches = append(matches, match)
		}
	}

	return append(matches, syslogs...), nil
}
