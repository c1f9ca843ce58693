package demo

import (
	"io"

	"github.com/mesh-intelligence/solid/internal/dip"
	"github.com/mesh-intelligence/solid/internal/isp"
	"github.com/mesh-intelligence/solid/internal/lsp"
	"github.com/mesh-intelligence/solid/internal/ocp"
	"github.com/mesh-intelligence/solid/internal/srp"
	"github.com/mesh-intelligence/solid/pkg/types"
)

// Catalog returns every scenario in run order: the general set first, then
// the construction site set ordered by principle, "before" ahead of "after".
func Catalog() []Scenario {
	return append(generalScenarios(), siteScenarios()...)
}

func generalScenarios() []Scenario {
	g := func(principle, variant, id, name string, run func(io.Writer) error) Scenario {
		return Scenario{
			ID: types.SetGeneral + "." + principle + "." + id, Set: types.SetGeneral,
			Principle: principle, Variant: variant, Name: name, Run: run,
		}
	}

	penguin := g(types.PrincipleLSP, types.VariantBefore, "penguin", "penguin flies", func(w io.Writer) error {
		var bird types.Bird = lsp.Penguin{}
		return bird.Fly(w)
	})
	penguin.ExpectErr = true

	return []Scenario{
		g(types.PrincipleSRP, types.VariantAfter, "authenticate", "authenticate user", func(w io.Writer) error {
			return srp.UserAuthenticationService{}.AuthenticateUser(w, "john.doe", "password")
		}),
		g(types.PrincipleSRP, types.VariantAfter, "email", "send email", func(w io.Writer) error {
			return srp.EmailService{}.SendEmail(w, "john.doe@example.com", "Test Subject", "This is a test email.")
		}),
		g(types.PrincipleOCP, types.VariantAfter, "rectangle", "rectangle area", func(w io.Writer) error {
			r, err := ocp.NewRectangle(5, 10)
			if err != nil {
				return err
			}
			return ocp.WriteArea(w, "Rectangle", r)
		}),
		g(types.PrincipleOCP, types.VariantAfter, "circle", "circle area", func(w io.Writer) error {
			c, err := ocp.NewCircle(7)
			if err != nil {
				return err
			}
			return ocp.WriteArea(w, "Circle", c)
		}),
		g(types.PrincipleLSP, types.VariantAfter, "eagle", "eagle flies", func(w io.Writer) error {
			var bird types.Bird = lsp.Eagle{}
			return bird.Fly(w)
		}),
		penguin,
		g(types.PrincipleISP, types.VariantAfter, "printer", "printer prints", func(w io.Writer) error {
			var p isp.Printer = isp.OfficePrinter{}
			return p.Print(w)
		}),
		g(types.PrincipleISP, types.VariantAfter, "scanner", "scanner scans", func(w io.Writer) error {
			var s isp.Scanner = isp.OfficeScanner{}
			return s.Scan(w)
		}),
		g(types.PrincipleDIP, types.VariantAfter, "email-notification", "email notification", func(w io.Writer) error {
			return notify(w, dip.EmailSender{}, "Hello, this is a notification via email.")
		}),
		g(types.PrincipleDIP, types.VariantAfter, "sms-notification", "sms notification", func(w io.Writer) error {
			return notify(w, dip.SMSSender{}, "Hello, this is a notification via SMS.")
		}),
	}
}

func siteScenarios() []Scenario {
	s := func(principle, variant, id, name string, run func(io.Writer) error) Scenario {
		return Scenario{
			ID: types.SetSite + "." + principle + "." + id, Set: types.SetSite,
			Principle: principle, Variant: variant, Name: name, Run: run,
		}
	}
	failing := func(sc Scenario) Scenario {
		sc.ExpectErr = true
		return sc
	}

	return []Scenario{
		// Single responsibility.
		s(types.PrincipleSRP, types.VariantBefore, "all-in-one", "one worker does every job", func(w io.Writer) error {
			cw := srp.ConstructionWorker{}
			return each(w, cw.BuildWall, cw.InstallWiring, cw.InstallPipes, cw.Paint)
		}),
		s(types.PrincipleSRP, types.VariantAfter, "crew", "each worker has one duty", func(w io.Writer) error {
			for _, worker := range srp.Crew() {
				if err := worker.PerformDuty(w); err != nil {
					return err
				}
			}
			return nil
		}),

		// Open/closed.
		s(types.PrincipleOCP, types.VariantBefore, "tagged", "tagged site runs known tags", func(w io.Writer) error {
			site := ocp.NewTaggedSite()
			for _, tag := range []string{
				ocp.TagWallBuilding, ocp.TagElectricalInstallation, ocp.TagPlumbingInstallation, ocp.TagDecorating,
			} {
				if err := site.PerformTask(w, tag); err != nil {
					return err
				}
			}
			return nil
		}),
		s(types.PrincipleOCP, types.VariantBefore, "tagged-unknown", "tagged site ignores unknown tag", func(w io.Writer) error {
			return ocp.NewTaggedSite().PerformTask(w, "Carpentry")
		}),
		s(types.PrincipleOCP, types.VariantAfter, "any-task", "site starts any task", func(w io.Writer) error {
			site := ocp.Site{}
			for _, task := range ocp.Tasks() {
				if err := site.StartWork(w, task); err != nil {
					return err
				}
			}
			return nil
		}),

		// Liskov substitution.
		failing(s(types.PrincipleLSP, types.VariantBefore, "inspector", "inspector as worker", func(w io.Writer) error {
			var worker types.Worker = lsp.Inspector{}
			return worker.PerformDuty(w)
		})),
		failing(s(types.PrincipleLSP, types.VariantBefore, "decorator", "decorator as worker", func(w io.Writer) error {
			var worker types.Worker = lsp.Decorator{}
			return worker.PerformDuty(w)
		})),
		s(types.PrincipleLSP, types.VariantAfter, "substitutable", "workers are substitutable", func(w io.Writer) error {
			return lsp.CheckSubstitutable(w, lsp.Bricklayer{}, lsp.Electrician{})
		}),
		s(types.PrincipleLSP, types.VariantAfter, "inspection", "inspector inspects", func(w io.Writer) error {
			var in lsp.Inspection = lsp.SiteInspector{}
			return in.PerformInspection(w)
		}),

		// Interface segregation.
		s(types.PrincipleISP, types.VariantBefore, "wide-wall", "wide bricklayer builds wall", func(w io.Writer) error {
			var tasks isp.ConstructionTasks = isp.WideBricklayer{}
			return tasks.BuildWall(w)
		}),
		failing(s(types.PrincipleISP, types.VariantBefore, "wide-wiring", "wide bricklayer forced to wire", func(w io.Writer) error {
			var tasks isp.ConstructionTasks = isp.WideBricklayer{}
			return tasks.InstallWiring(w)
		})),
		s(types.PrincipleISP, types.VariantAfter, "roles", "each role on its own", func(w io.Writer) error {
			var (
				wb isp.WallBuilder      = isp.Bricklayer{}
				ew isp.ElectricalWorker = isp.Electrician{}
				pw isp.PlumbingWorker   = isp.Plumber{}
				dw isp.DecoratingWorker = isp.Decorator{}
			)
			return each(w, wb.BuildWall, ew.InstallWiring, pw.InstallPipes, dw.Paint)
		}),

		// Dependency inversion.
		s(types.PrincipleDIP, types.VariantBefore, "concrete", "concrete site by tag", func(w io.Writer) error {
			site := dip.NewConcreteSite(dip.Bricklayer{}, dip.Electrician{}, dip.Plumber{}, dip.Decorator{})
			return site.StartWork(w, dip.TagBricklayer)
		}),
		s(types.PrincipleDIP, types.VariantBefore, "concrete-unknown", "concrete site ignores unknown tag", func(w io.Writer) error {
			site := dip.NewConcreteSite(dip.Bricklayer{}, dip.Electrician{}, dip.Plumber{}, dip.Decorator{})
			return site.StartWork(w, "Carpenter")
		}),
		s(types.PrincipleDIP, types.VariantAfter, "injected-bricklayer", "site with injected bricklayer", func(w io.Writer) error {
			return startSite(w, dip.Bricklayer{})
		}),
		s(types.PrincipleDIP, types.VariantAfter, "injected-electrician", "site with injected electrician", func(w io.Writer) error {
			return startSite(w, dip.Electrician{})
		}),
	}
}

func each(w io.Writer, ops ...func(io.Writer) error) error {
	for _, op := range ops {
		if err := op(w); err != nil {
			return err
		}
	}
	return nil
}

func notify(w io.Writer, sender types.Sender, message string) error {
	svc, err := dip.NewNotificationService(sender)
	if err != nil {
		return err
	}
	return svc.SendNotification(w, message)
}

func startSite(w io.Writer, worker types.Worker) error {
	site, err := dip.NewSite(worker)
	if err != nil {
		return err
	}
	return site.StartWork(w)
}
