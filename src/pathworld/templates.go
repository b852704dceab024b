package pathworld

import (
	"fmt"

	"github.com/beevik/etree"
)

// The slots filled per marker are the model name attribute, <pose> and the
// visual geometry size. Everything else is copied as-is.
const boxModelTemplate = `
<model name='unit_box'>
  <static>true</static>
  <pose>0 0 0 0 0 0</pose>
  <link name='link'>
    <collision name='collision'>
      <geometry>
        <box>
          <size>0.000005 0.000005 0.000005</size>
        </box>
      </geometry>
      <max_contacts>10</max_contacts>
      <surface>
        <contact>
          <ode/>
        </contact>
        <bounce/>
        <friction>
          <torsional>
            <ode/>
          </torsional>
          <ode/>
        </friction>
      </surface>
    </collision>
    <visual name='visual'>
      <geometry>
        <box>
          <size>1 1 1</size>
        </box>
      </geometry>
      <material>
        <script>
          <name>Gazebo/Green</name>
          <uri>file://media/materials/scripts/gazebo.material</uri>
        </script>
      </material>
    </visual>
  </link>
</model>
`

const cylinderModelTemplate = `
<model name='unit_cylinder'>
  <pose>0 0 0 0 0 0</pose>
  <link name='link'>
    <collision name='collision'>
      <geometry>
        <cylinder>
          <radius>0.000005</radius>
          <length>0.000005</length>
        </cylinder>
      </geometry>
      <max_contacts>10</max_contacts>
      <surface>
        <contact>
          <ode/>
        </contact>
        <bounce/>
        <friction>
          <torsional>
            <ode/>
          </torsional>
          <ode/>
        </friction>
      </surface>
    </collision>
    <visual name='visual'>
      <geometry>
        <cylinder>
          <radius>0.04</radius>
          <length>0.0005</length>
        </cylinder>
      </geometry>
      <material>
        <script>
          <name>Gazebo/Red</name>
          <uri>file://media/materials/scripts/gazebo.material</uri>
        </script>
      </material>
    </visual>
  </link>
</model>
`

const worldTemplate = `<?xml version="1.0" ?>
<sdf version="1.5">
  <world name="default">
    <include>
      <uri>model://sun</uri>
    </include>
    <include>
      <uri>model://ground_plane</uri>
    </include>
    <gui>
      <camera name="user_camera">
        <pose>0 0 0 0 1.57 1.57 0</pose>
      </camera>
    </gui>
  </world>
</sdf>
`

var (
	boxModelBlueprint      = mustParse(boxModelTemplate)
	cylinderModelBlueprint = mustParse(cylinderModelTemplate)
	worldBlueprint         = mustParse(worldTemplate)
)

func mustParse(tmpl string) *etree.Document {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(tmpl); err != nil {
		panic(fmt.Sprintf("bad template: %v", err))
	}
	return doc
}
