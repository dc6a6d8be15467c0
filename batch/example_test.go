package batch_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/randwalk/batch"
	"github.com/katalvlaran/randwalk/geom"
	"github.com/katalvlaran/randwalk/step"
)

func ExampleScenario_Describe() {
	boundary, _ := geom.NewBox(geom.Origin, 20, 20, 40)
	target, _ := geom.NewSphere(geom.Pt(0, 0, 10), 2)
	sc := batch.Scenario{MaxSteps: 500, Step: step.KindGrid, Boundary: boundary, Target: target, MoveTarget: true}

	fmt.Print(sc.Describe())
	// Output:
	// Walk characteristics:
	//    Boundary: box width=20 height=20 depth=40 centered at (0, 0, 0)
	//       Volume: 16000
	//    Target: sphere radius=2 centered at (0, 0, 10)
	//       Volume: 34
	//    Starting point: (0, 0, 0)
	//    Distance from start to initial target: 10.00
	//    Step generator: grid
	//    Max steps: 500
	//    Move target: true
}

func ExampleRunner_Run() {
	boundary, _ := geom.NewSphere(geom.Origin, 4)
	target, _ := geom.NewSphere(geom.Pt(2, 0, 0), 1.5)
	sc := batch.Scenario{MaxSteps: 1_000_000, Step: step.KindContinuous, Boundary: boundary, Target: target}

	res, err := batch.NewRunner(batch.WithSeed(7), batch.WithWorkers(2)).Run(context.Background(), sc, 5)
	if err != nil {
		fmt.Println(err)
		return
	}
	hits := 0
	for _, o := range res.Outcomes {
		if o.TargetHit {
			hits++
		}
	}
	fmt.Printf("%d walks, %d hits\n", len(res.Outcomes), hits)
	// Output:
	// 5 walks, 5 hits
}
