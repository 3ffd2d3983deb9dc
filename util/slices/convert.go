package slices

// PartitionStrings splits decoded YAML items into the string items and
// everything else, keeping order within both parts.
func PartitionStrings(slice []interface{}) ([]string, []interface{}) {
	var (
		strs []string
		rest []interface{}
	)

	for _, intf := range slice {
		switch v := intf.(type) {
		case string:
			strs = append(strs, v)
		default:
			rest = append(rest, v)
		}
	}

	return strs, rest
}
