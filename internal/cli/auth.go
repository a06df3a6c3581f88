package cli

import (
	"context"
	"flag"
	"fmt"
	"log/slog"

	"github.com/fatih/color"

	"github.com/luminahr/luminahr-go/luminahr"
)

func runSignup(ctx context.Context, a *App, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	company := fs.String("company", "", "company name (new or existing)")
	country := fs.String("country", "", "company country, required for a new company")
	role := fs.String("role", luminahr.RoleEmployee, "Admin or Employee")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" || *company == "" {
		return fmt.Errorf("signup: -email, -password and -company are required")
	}

	resp, err := a.Client.Auth.SignUp(ctx, luminahr.SignUpRequest{
		Email:       *email,
		Password:    *password,
		CompanyName: *company,
		Country:     *country,
		Role:        *role,
	})
	if err != nil {
		return err
	}
	a.successf("%s", resp.Message)
	return nil
}

func runLogin(ctx context.Context, a *App, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return fmt.Errorf("login: -email is required")
	}
	if *password == "" {
		entered, err := a.readLine("Password: ")
		if err != nil {
			return err
		}
		*password = entered
	}

	resp, err := a.Client.Auth.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	a.Client.Session().Set(resp.AccessToken, &resp.User)
	a.Logger.Info("logged in", slog.String("email", resp.User.Email), slog.String("role", resp.User.Role))
	a.successf("Logged in as %s (%s) at %s", resp.User.Email, resp.User.Role, resp.User.CompanyName)
	return nil
}

func runLogout(_ context.Context, a *App, _ []string) error {
	a.Client.Session().Clear()
	a.successf("Logged out")
	return nil
}

func runWhoami(ctx context.Context, a *App, _ []string) error {
	session := a.Client.Session()
	if session.Token() == "" {
		return luminahr.ErrNoSession
	}

	user, err := a.Client.Auth.Me(ctx)
	if err != nil {
		return err
	}
	a.printf("%s\n", color.CyanString(user.FullName))
	a.printf("  Email:      %s\n", user.Email)
	a.printf("  Role:       %s\n", user.Role)
	a.printf("  Company:    %s\n", user.CompanyName)
	a.printf("  Department: %s\n", user.Department)

	if claims, err := luminahr.InspectToken(session.Token()); err == nil && claims.ExpiresAt != nil {
		a.printf("  Token expires: %s\n", claims.ExpiresAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func runProfile(ctx context.Context, a *App, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	fullName := fs.String("name", "", "full name")
	department := fs.String("department", "", "department")
	jobTitle := fs.String("title", "", "job title")
	phone := fs.String("phone", "", "phone number")
	if err := fs.Parse(args); err != nil {
		return err
	}

	upd := luminahr.ProfileUpdate{}
	if *fullName != "" {
		upd.FullName = fullName
	}
	if *department != "" {
		upd.Department = department
	}
	if *jobTitle != "" {
		upd.JobTitle = jobTitle
	}
	if *phone != "" {
		upd.Phone = phone
	}

	if err := a.Client.Auth.UpdateProfile(ctx, upd); err != nil {
		return err
	}
	a.successf("Profile updated")
	return nil
}

func runPasswd(ctx context.Context, a *App, args []string) error {
	fs := flag.NewFlagSet("passwd", flag.ContinueOnError)
	current := fs.String("current", "", "current password")
	updated := fs.String("new", "", "new password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *current == "" || *updated == "" {
		return fmt.Errorf("passwd: -current and -new are required")
	}

	if err := a.Client.Auth.ChangePassword(ctx, *current, *updated); err != nil {
		return err
	}
	// The backend revokes outstanding tokens on a password change.
	a.Client.Session().Clear()
	a.successf("Password changed, please log in again")
	return nil
}

func runCompanies(ctx context.Context, a *App, _ []string) error {
	companies, err := a.Client.Auth.Companies(ctx)
	if err != nil {
		return err
	}
	for _, c := range companies {
		a.printf("%s  %s (%s)\n", c.ID, c.Name, c.Country)
	}
	return nil
}
