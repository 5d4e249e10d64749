package rbac

// Default policy. Players only ever see their own data.
var RolePermissions = map[string][]string{
	"player": {
		"results:append",
		"results:view-own",
		"profile:view-own",
		"personality:submit",
		"personality:view-own",
	},
	// read-only staff: any user's data, no writes
	"analyst": {
		"results:view-all",
		"profile:view-all",
		"personality:view-all",
	},
	"admin": {
		"*", // everything
	},
}
